package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/daily-lab/todolite/pkg/domain/types"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := types.ParseDate("2025-06-21")
		gt.NoError(t, err).Required()
		gt.Value(t, d.String()).Equal("2025-06-21")
		gt.Value(t, d.IsZero()).Equal(false)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := types.ParseDate("21/06/2025")
		gt.Error(t, err)

		_, err = types.ParseDate("2025-13-01")
		gt.Error(t, err)
	})
}

func TestDateJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		d := types.NewDate(2025, time.January, 1)
		data, err := json.Marshal(d)
		gt.NoError(t, err).Required()
		gt.Value(t, string(data)).Equal(`"2025-01-01"`)
	})

	t.Run("unmarshal", func(t *testing.T) {
		var d types.Date
		gt.NoError(t, json.Unmarshal([]byte(`"2025-06-21"`), &d)).Required()
		gt.Value(t, d).Equal(types.NewDate(2025, time.June, 21))
	})

	t.Run("unmarshal rejects non-string", func(t *testing.T) {
		var d types.Date
		gt.Error(t, json.Unmarshal([]byte(`20250621`), &d))
	})
}

func TestDateScan(t *testing.T) {
	t.Run("scan time.Time", func(t *testing.T) {
		var d types.Date
		gt.NoError(t, d.Scan(time.Date(2025, time.June, 21, 15, 4, 5, 0, time.UTC))).Required()
		gt.Value(t, d.String()).Equal("2025-06-21")
	})

	t.Run("scan string", func(t *testing.T) {
		var d types.Date
		gt.NoError(t, d.Scan("2025-06-21")).Required()
		gt.Value(t, d.String()).Equal("2025-06-21")
	})

	t.Run("scan unsupported type", func(t *testing.T) {
		var d types.Date
		gt.Error(t, d.Scan(3.14))
	})
}

func TestDateOrdering(t *testing.T) {
	early := types.NewDate(2025, time.January, 1)
	late := types.NewDate(2025, time.December, 31)

	gt.Value(t, early.Before(late)).Equal(true)
	gt.Value(t, late.Before(early)).Equal(false)
	gt.Value(t, early.Equal(early)).Equal(true)
}

func TestParseTodoID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := types.ParseTodoID("42")
		gt.NoError(t, err).Required()
		gt.Value(t, id).Equal(types.TodoID(42))
		gt.Value(t, id.IsValid()).Equal(true)
		gt.Value(t, id.String()).Equal("42")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := types.ParseTodoID("abc")
		gt.Error(t, err)
	})

	t.Run("zero is not valid", func(t *testing.T) {
		gt.Value(t, types.TodoID(0).IsValid()).Equal(false)
	})
}
