package compound

import (
	"testing"

	"github.com/compound-format/go-compound/tag"
)

func TestMatch(t *testing.T) {
	doc := tag.FromMap(map[string]*tag.Tag{
		"health": tag.FromInt(20),
		"name":   tag.FromString("iris"),
		"ghost":  tag.FromBool(false),
		"stats":  tag.FromMap(map[string]*tag.Tag{"strength": tag.FromShort(7)}),
	})
	tests := []struct {
		program string
		want    bool
	}{
		{`health > 10`, true},
		{`health > 30`, false},
		{`name == "iris"`, true},
		{`ghost == 0`, true},
		{`stats.strength >= 7 && health == 20`, true},
		{`missing == nil`, true},
	}
	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			got, err := Match(doc, tt.program)
			if err != nil {
				t.Fatalf("Match() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.program, got, tt.want)
			}
		})
	}
}

func TestMatchErrors(t *testing.T) {
	doc := tag.FromMap(map[string]*tag.Tag{"v": tag.FromInt(1)})
	if _, err := Match(doc, `v +`); err == nil {
		t.Error("malformed program did not fail")
	}
	if _, err := Match(tag.FromInt(1), `true`); err == nil {
		t.Error("non-compound document did not fail")
	}
}
