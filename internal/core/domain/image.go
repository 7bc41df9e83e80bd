package domain

import (
	"encoding/json"
	"strings"
)

// ImageKind discriminates the image attachment variants of an entry.
type ImageKind string

const (
	ImageNone   ImageKind = "NONE"
	ImageDemo   ImageKind = "DEMO"
	ImageRemote ImageKind = "REMOTE"
)

// DemoAsset names one of the built-in demo images shipped with the app.
type DemoAsset string

const (
	DemoFamilySunset      DemoAsset = "demo_family_sunset"
	DemoMeditationSunrise DemoAsset = "demo_meditation_sunrise"
	DemoLightbulb         DemoAsset = "demo_lightbulb"
)

// ImageRef is the tagged image attachment reference: either nothing, a
// built-in demo asset, or a URL into object storage. It replaces the
// bare magic-string comparison the mobile client used; the wire and
// storage format stays a single string for compatibility.
type ImageRef struct {
	Kind ImageKind `json:"kind"`
	Demo DemoAsset `json:"demo,omitempty"` // set iff Kind == ImageDemo
	URL  string    `json:"url,omitempty"`  // set iff Kind == ImageRemote
}

// NoImage is the zero attachment.
var NoImage = ImageRef{Kind: ImageNone}

// DemoImage builds a demo-asset reference.
func DemoImage(asset DemoAsset) ImageRef {
	return ImageRef{Kind: ImageDemo, Demo: asset}
}

// RemoteImage builds a reference to an uploaded image URL.
func RemoteImage(url string) ImageRef {
	return ImageRef{Kind: ImageRemote, URL: url}
}

// ParseImageRef interprets the stored string form: empty means no
// image, a known demo marker means the corresponding demo asset, and
// anything else is treated as a remote URL.
func ParseImageRef(s string) ImageRef {
	switch DemoAsset(s) {
	case DemoFamilySunset, DemoMeditationSunrise, DemoLightbulb:
		return DemoImage(DemoAsset(s))
	}
	if strings.TrimSpace(s) == "" {
		return NoImage
	}
	return RemoteImage(s)
}

// String returns the single-string storage form of the reference.
func (r ImageRef) String() string {
	switch r.Kind {
	case ImageDemo:
		return string(r.Demo)
	case ImageRemote:
		return r.URL
	default:
		return ""
	}
}

// IsZero reports whether the entry has no image attached.
func (r ImageRef) IsZero() bool {
	return r.Kind == "" || r.Kind == ImageNone
}

// MarshalJSON emits the compact string form so API payloads match the
// stored document field.
func (r ImageRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts the compact string form.
func (r *ImageRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseImageRef(s)
	return nil
}
