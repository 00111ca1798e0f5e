package numeric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatCoercion(t *testing.T) {
	var payload struct {
		A Float `json:"a"`
		B Float `json:"b"`
		C Float `json:"c"`
		D Float `json:"d"`
		E Float `json:"e"`
	}

	err := json.Unmarshal([]byte(`{"a": 8.5, "b": "4", "c": "", "d": null, "e": "abc"}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, 8.5, payload.A.Value())
	assert.Equal(t, 4.0, payload.B.Value())
	assert.Equal(t, 0.0, payload.C.Value())
	assert.Equal(t, 0.0, payload.D.Value())
	assert.Equal(t, 0.0, payload.E.Value())
}

func TestIntCoercionAndDefault(t *testing.T) {
	var payload struct {
		ProjectID Int `json:"project_id"`
		MiscID    Int `json:"miscellaneous_description_id"`
		Day       Int `json:"day"`
	}

	err := json.Unmarshal([]byte(`{"project_id": "", "miscellaneous_description_id": "7", "day": 3.0}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), payload.ProjectID.OrDefault(2))
	assert.Equal(t, int64(7), payload.MiscID.OrDefault(1))
	assert.Equal(t, int64(3), payload.Day.Value())
}
