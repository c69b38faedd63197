package types

import "strconv"

// TodoID identifies a to-do record. IDs are assigned by the storage layer
// and are immutable once set.
type TodoID int64

// String returns the decimal representation of the ID
func (id TodoID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Int64 returns the ID as int64
func (id TodoID) Int64() int64 {
	return int64(id)
}

// IsValid checks if the ID has been assigned
func (id TodoID) IsValid() bool {
	return id > 0
}

// ParseTodoID parses a decimal string into a TodoID
func ParseTodoID(s string) (TodoID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return TodoID(v), nil
}
