package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		params      []string
		want        string
	}{
		{
			name:        "without params",
			serviceName: "question",
			objectType:  "detail",
			identifier:  "01HZX3T9",
			want:        "interviewhub:question:detail:01HZX3T9",
		},
		{
			name:        "with single param",
			serviceName: "question",
			objectType:  "list",
			identifier:  "all",
			params:      []string{"qtype=Scale"},
			want:        "interviewhub:question:list:all:qtype=Scale",
		},
		{
			name:        "with multiple params",
			serviceName: "question",
			objectType:  "list",
			identifier:  "all",
			params:      []string{"tag=culture", "search=tool"},
			want:        "interviewhub:question:list:all:tag=culture_search=tool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.params...)
			assert.Equal(t, tt.want, got)
		})
	}
}
