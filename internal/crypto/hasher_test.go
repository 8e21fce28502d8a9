package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasskeyHasher_Hash(t *testing.T) {
	h := NewPasskeyHasher()

	tests := []struct {
		name    string
		passkey string
		want    string
	}{
		{name: "empty", passkey: "", want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{name: "abc", passkey: "abc", want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Hash(tt.passkey))
		})
	}
}

func TestPasskeyHasher_Deterministic(t *testing.T) {
	h := NewPasskeyHasher()

	assert.Equal(t, h.Hash("pw1"), h.Hash("pw1"))
	assert.NotEqual(t, h.Hash("pw1"), h.Hash("pw2"))
	assert.Len(t, h.Hash("anything"), 64)
}
