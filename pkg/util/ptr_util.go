package util

func Ptr[V string | bool | int | int64](s V) *V {
	return &s
}
