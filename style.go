package fab

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Style is a partial button configuration loaded from a YAML document. Nil
// fields are absent and leave the button's value untouched. Dimensions are
// in dp.
type Style struct {
	Type                          *ButtonType
	Size                          *float64
	ButtonColor                   *Color
	ButtonColorPressed            *Color
	ButtonColorRipple             *Color
	RippleEffectEnabled           *bool
	ShadowResponsiveEffectEnabled *bool
	ShadowRadius                  *float64
	ShadowXOffset                 *float64
	ShadowYOffset                 *float64
	ShadowColor                   *Color
	StrokeWidth                   *float64
	StrokeColor                   *Color
	ImageSize                     *float64
	Elevation                     *float64
	ShowAnimation                 *AnimationPreset
	HideAnimation                 *AnimationPreset
}

// styleDoc is the on-disk shape of a Style.
type styleDoc struct {
	Type                          *string  `yaml:"type"`
	Size                          *float64 `yaml:"size"`
	ButtonColor                   *string  `yaml:"button_color"`
	ButtonColorPressed            *string  `yaml:"button_color_pressed"`
	ButtonColorRipple             *string  `yaml:"button_color_ripple"`
	RippleEffectEnabled           *bool    `yaml:"ripple_effect_enabled"`
	ShadowResponsiveEffectEnabled *bool    `yaml:"shadow_responsive_effect_enabled"`
	ShadowRadius                  *float64 `yaml:"shadow_radius"`
	ShadowXOffset                 *float64 `yaml:"shadow_x_offset"`
	ShadowYOffset                 *float64 `yaml:"shadow_y_offset"`
	ShadowColor                   *string  `yaml:"shadow_color"`
	StrokeWidth                   *float64 `yaml:"stroke_width"`
	StrokeColor                   *string  `yaml:"stroke_color"`
	ImageSize                     *float64 `yaml:"image_size"`
	Elevation                     *float64 `yaml:"elevation"`
	ShowAnimation                 *string  `yaml:"show_animation"`
	HideAnimation                 *string  `yaml:"hide_animation"`
}

// ParseStyle parses a YAML style document.
func ParseStyle(data []byte) (Style, error) {
	var doc styleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Style{}, errors.Wrap(err, "parse style")
	}

	s := Style{
		Size:                          doc.Size,
		RippleEffectEnabled:           doc.RippleEffectEnabled,
		ShadowResponsiveEffectEnabled: doc.ShadowResponsiveEffectEnabled,
		ShadowRadius:                  doc.ShadowRadius,
		ShadowXOffset:                 doc.ShadowXOffset,
		ShadowYOffset:                 doc.ShadowYOffset,
		StrokeWidth:                   doc.StrokeWidth,
		ImageSize:                     doc.ImageSize,
		Elevation:                     doc.Elevation,
	}

	for key, v := range map[string]*float64{
		"size":          doc.Size,
		"shadow_radius": doc.ShadowRadius,
		"stroke_width":  doc.StrokeWidth,
		"image_size":    doc.ImageSize,
		"elevation":     doc.Elevation,
	} {
		if v != nil && *v < 0 {
			return Style{}, errors.Errorf("parse style: %s: negative value %v", key, *v)
		}
	}

	if doc.Type != nil {
		t, err := ParseButtonType(*doc.Type)
		if err != nil {
			return Style{}, errors.Wrap(err, "parse style: type")
		}
		s.Type = &t
	}

	colors := []struct {
		key string
		src *string
		dst **Color
	}{
		{"button_color", doc.ButtonColor, &s.ButtonColor},
		{"button_color_pressed", doc.ButtonColorPressed, &s.ButtonColorPressed},
		{"button_color_ripple", doc.ButtonColorRipple, &s.ButtonColorRipple},
		{"shadow_color", doc.ShadowColor, &s.ShadowColor},
		{"stroke_color", doc.StrokeColor, &s.StrokeColor},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		v, err := ParseColor(*c.src)
		if err != nil {
			return Style{}, errors.Wrapf(err, "parse style: %s", c.key)
		}
		*c.dst = &v
	}

	anims := []struct {
		key string
		src *string
		dst **AnimationPreset
	}{
		{"show_animation", doc.ShowAnimation, &s.ShowAnimation},
		{"hide_animation", doc.HideAnimation, &s.HideAnimation},
	}
	for _, a := range anims {
		if a.src == nil {
			continue
		}
		p, err := ParseAnimationPreset(*a.src)
		if err != nil {
			return Style{}, errors.Wrapf(err, "parse style: %s", a.key)
		}
		*a.dst = &p
	}
	return s, nil
}

// LoadStyleFile reads and parses a YAML style file.
func LoadStyleFile(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, errors.Wrapf(err, "read style %s", path)
	}
	return ParseStyle(data)
}

// ParseButtonType accepts a type name (default, mini, big) or its numeric
// id.
func ParseButtonType(s string) (ButtonType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "default":
		return TypeDefault, nil
	case "mini":
		return TypeMini, nil
	case "big":
		return TypeBig, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return TypeDefault, errors.Errorf("unknown button type %q", s)
	}
	return ButtonTypeForID(id), nil
}

// Apply sets every present value on b through its setters. The type is
// applied first so an explicit size overrides the type's size, and the
// pressed color before the ripple color so an explicit ripple color wins.
func (s Style) Apply(b *Button) {
	if s.Type != nil {
		b.SetType(*s.Type)
	}
	if s.Size != nil {
		b.SetSize(*s.Size)
	}
	if s.ButtonColor != nil {
		b.SetButtonColor(*s.ButtonColor)
	}
	if s.ButtonColorPressed != nil {
		b.SetButtonColorPressed(*s.ButtonColorPressed)
	}
	if s.RippleEffectEnabled != nil {
		b.SetRippleEffectEnabled(*s.RippleEffectEnabled)
	}
	if s.ButtonColorRipple != nil {
		b.SetButtonColorRipple(*s.ButtonColorRipple)
	}
	if s.ShadowResponsiveEffectEnabled != nil {
		b.SetShadowResponsiveEffectEnabled(*s.ShadowResponsiveEffectEnabled)
	}
	if s.ShadowRadius != nil {
		b.SetShadowRadius(*s.ShadowRadius)
	}
	if s.ShadowXOffset != nil {
		b.SetShadowXOffset(*s.ShadowXOffset)
	}
	if s.ShadowYOffset != nil {
		b.SetShadowYOffset(*s.ShadowYOffset)
	}
	if s.ShadowColor != nil {
		b.SetShadowColor(*s.ShadowColor)
	}
	if s.StrokeWidth != nil {
		b.SetStrokeWidth(*s.StrokeWidth)
	}
	if s.StrokeColor != nil {
		b.SetStrokeColor(*s.StrokeColor)
	}
	if s.ImageSize != nil {
		b.SetImageSize(*s.ImageSize)
	}
	if s.Elevation != nil {
		b.SetElevation(*s.Elevation)
	}
	if s.ShowAnimation != nil {
		b.SetShowAnimation(s.ShowAnimation.Animation())
	}
	if s.HideAnimation != nil {
		b.SetHideAnimation(s.HideAnimation.Animation())
	}
}
