package artwork

import (
	"testing"

	"github.com/llehouerou/topplays/internal/history"
)

func TestPick(t *testing.T) {
	tests := []struct {
		name   string
		images []Image
		want   string
	}{
		{
			name: "extralarge preferred",
			images: []Image{
				{Size: SizeSmall, URL: "s"},
				{Size: SizeMedium, URL: "m"},
				{Size: SizeLarge, URL: "l"},
				{Size: SizeExtraLarge, URL: "xl"},
			},
			want: "xl",
		},
		{
			name: "falls back to large when extralarge is empty",
			images: []Image{
				{Size: SizeLarge, URL: "l"},
				{Size: SizeExtraLarge, URL: ""},
			},
			want: "l",
		},
		{
			name: "falls back to large when extralarge is placeholder",
			images: []Image{
				{Size: SizeLarge, URL: "l"},
				{Size: SizeExtraLarge, URL: placeholderURL},
			},
			want: "l",
		},
		{
			name: "order in list does not matter",
			images: []Image{
				{Size: SizeExtraLarge, URL: "xl"},
				{Size: SizeLarge, URL: "l"},
			},
			want: "xl",
		},
		{
			name:   "smaller sizes are not used",
			images: []Image{{Size: SizeSmall, URL: "s"}, {Size: SizeMedium, URL: "m"}},
			want:   "",
		},
		{
			name:   "no images",
			images: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pick(tt.images, Preferred); got != tt.want {
				t.Errorf("Pick() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUsable(t *testing.T) {
	if Usable("") {
		t.Error("empty URL should not be usable")
	}
	if Usable(placeholderURL) {
		t.Error("placeholder URL should not be usable")
	}
	if !Usable("https://img/real.png") {
		t.Error("real URL should be usable")
	}
}

func TestCache_WriteOnce(t *testing.T) {
	c := NewCache()
	key := history.TrackIdentity{Track: "a", Artist: "b"}.Key()

	if _, ok := c.Get(key); ok {
		t.Fatal("expected unattempted key")
	}

	if got := c.Put(key, ""); got != "" {
		t.Errorf("Put returned %q, want empty", got)
	}
	if got := c.Put(key, "https://img/late.png"); got != "" {
		t.Errorf("second Put returned %q, want the first outcome", got)
	}

	url, ok := c.Get(key)
	if !ok || url != "" {
		t.Errorf("Get = (%q, %v), want (\"\", true)", url, ok)
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", c.Len())
	}
}
