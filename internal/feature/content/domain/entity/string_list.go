package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList はJSONカラムとして永続化される順序付き文字列リストです。
// MySQLのJSON型・SQLiteのTEXT型の両方で動作します。
type StringList []string

// Value はdriver.Valuerを実装し、リストをJSONバイト列に変換します。
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan はsql.Scannerを実装し、JSONバイト列からリストを復元します。
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return errors.New("invalid JSON in string list column: " + err.Error())
	}
	*l = out
	return nil
}
