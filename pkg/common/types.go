package common

import "fmt"

// Record 是电话簿中的一条记录：电话号码 + 姓名
type Record struct {
	Phone string
	Name  string
}

// String 方便调试打印
func (r *Record) String() string {
	return fmt.Sprintf("Record{Phone: %s, Name: %q}", r.Phone, r.Name)
}
