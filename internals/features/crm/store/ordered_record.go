package store

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// OrderedRecord menulis Record sebagai objek JSON dengan urutan key = Fields.
// Key yang tidak ada di Values ditulis null.
type OrderedRecord struct {
	Fields []string
	Values Record
}

func (r OrderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.Marshal(f)
		if err != nil {
			return nil, err
		}
		val, err := sonic.Marshal(r.Values[f])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Ordered membungkus rows hasil Query dengan urutan proyeksi yang sama.
func Ordered(rows []Record, fields []string) []OrderedRecord {
	out := make([]OrderedRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, OrderedRecord{Fields: fields, Values: row})
	}
	return out
}
