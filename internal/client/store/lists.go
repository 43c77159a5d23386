package store

func orEmpty[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func prepend[T any](v T, list []T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}

func appendCopy[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

// mapItems returns a new slice with fn applied to every element.
func mapItems[T any](list []T, fn func(T) T) []T {
	out := make([]T, len(list))
	for i, v := range list {
		out[i] = fn(v)
	}
	return out
}

// replaceByID substitutes every element whose id matches with v.
func replaceByID[T any](list []T, id int64, idOf func(T) int64, v T) []T {
	return mapItems(list, func(item T) T {
		if idOf(item) == id {
			return v
		}
		return item
	})
}

// filterItems returns a new slice holding the elements keep accepts.
func filterItems[T any](list []T, keep func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func removeByID[T any](list []T, id int64, idOf func(T) int64) []T {
	return filterItems(list, func(item T) bool { return idOf(item) != id })
}
