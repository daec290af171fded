package staffomatic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinkNext(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"next and last", `<https://api.staffomaticapp.com/v3/users?page=2>; rel="next", <https://api.staffomaticapp.com/v3/users?page=5>; rel="last"`, "https://api.staffomaticapp.com/v3/users?page=2"},
		{"next after prev", `<https://h/users?page=1>; rel="prev", <https://h/users?page=3>; rel="next"`, "https://h/users?page=3"},
		{"unquoted rel", `<https://h/users?page=2>; rel=next`, "https://h/users?page=2"},
		{"last page", `<https://h/users?page=1>; rel="first", <https://h/users?page=4>; rel="prev"`, ""},
		{"missing brackets", `https://h/users?page=2; rel="next"`, ""},
		{"no rel", `<https://h/users?page=2>`, ""},
		{"comma in url", `<https://h/users?ids=1,2&page=2>; rel="next"`, "https://h/users?ids=1,2&page=2"},
		{"comma in url after prev", `<https://h/users?fields=id,login&page=1>; rel="prev", <https://h/users?fields=id,login&page=3>; rel="next"`, "https://h/users?fields=id,login&page=3"},
		{"relation case", `<https://h/users?page=2>; rel="Next"`, "https://h/users?page=2"},
		{"several relations", `<https://h/users?page=2>; rel="next last"`, "https://h/users?page=2"},
		{"spaces around equal", `<https://h/users?page=2>; rel = "next"`, "https://h/users?page=2"},
		{"other params first", `<https://h/users?page=2>; title="more"; REL=next`, "https://h/users?page=2"},
		{"next in another param", `<https://h/users?page=2>; title="next"`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLinkNext(tt.header))
		})
	}
}
