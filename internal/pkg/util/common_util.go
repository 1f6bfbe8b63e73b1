package util

import (
	"strconv"
)

// StrSliceToUInt64Slice 字符串切片转 uint64 切片
func StrSliceToUInt64Slice(strs []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(strs))
	for _, s := range strs {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}

// PtrInt64 用于将 int64 转换为 *int64
func PtrInt64(i int64) *int64 {
	return &i
}

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}
