package serializer

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/hyperstats/internal/sentinel"
)

type sample struct {
	Name  string  `json:"name"  msgpack:"name"`
	Value float64 `json:"value" msgpack:"value"`
}

func TestRegistry_DefaultSerializersRoundTrip(t *testing.T) {
	for _, name := range []string{JSON, Msgpack, CBOR} {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			assert.Nil(t, err)

			data, err := s.Marshal(&sample{Name: "mean", Value: 2.4})
			assert.Nil(t, err)

			var out sample

			err = s.Unmarshal(data, &out)
			assert.Nil(t, err)
			assert.Equal(t, "mean", out.Name)
			assert.Equal(t, 2.4, out.Value)
		})
	}
}

func TestRegistry_Errors(t *testing.T) {
	_, err := New("")
	assert.True(t, errors.Is(err, sentinel.ErrParamCannotBeEmpty))

	_, err = New("gob")
	assert.True(t, errors.Is(err, sentinel.ErrSerializerNotFound))

	registry := NewEmptySerializerRegistry()
	_, err = registry.New(JSON)
	assert.True(t, errors.Is(err, sentinel.ErrSerializerNotFound))
}
