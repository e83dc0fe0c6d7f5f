package indexes

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestKeySig(t *testing.T) {
	tests := []struct {
		name string
		keys bson.D
		want string
	}{
		{
			name: "single ascending key",
			keys: bson.D{{Key: "access_token", Value: 1}},
			want: "access_token:1",
		},
		{
			name: "compound key preserves order",
			keys: bson.D{{Key: "expires_at", Value: 1}, {Key: "access_token", Value: -1}},
			want: "expires_at:1, access_token:-1",
		},
		{
			name: "empty",
			keys: bson.D{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keySig(tt.keys); got != tt.want {
				t.Errorf("keySig: got %q, want %q", got, tt.want)
			}
		})
	}
}
