// Package cssclamp builds CSS clamp() expressions for fluid sizing.
//
// A fluid size grows linearly with the viewport between two breakpoints and
// stays fixed outside them. cssclamp fits that line and renders it as one
// clamp() value in rem and vw units.
//
// # Computing an expression
//
//	cssclamp.Clamp(cssclamp.Number(8), cssclamp.Number(16), nil)
//	// clamp(0.5rem, 0.3239rem + 0.5634vw, 1rem)
//
// Sizes may be numbers (px), or strings with a "px" or "rem" suffix:
//
//	cssclamp.Clamp(cssclamp.Text("0.5rem"), cssclamp.Text("16px"), nil)
//
// # Overrides
//
// The viewport range defaults to 500px..1920px with a 16px root. Change it
// per call with a config object or the positional form:
//
//	cssclamp.Clamp(min, max, cssclamp.ConfigOverrides(cssclamp.Config{
//		MinWidth: cssclamp.Number(100),
//		MaxWidth: cssclamp.Number(200),
//	}))
//	cssclamp.Clamp(min, max, cssclamp.Positional(cssclamp.Number(100), cssclamp.Number(200), cssclamp.Size{}))
//
// # Project configuration
//
// A Calculator takes a ConfigProvider whose values sit between the defaults
// and the call-site overrides. The CLI uses one that discovers .css-clamprc
// files and the "css-clamp" key of package.json.
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssclamp/cmd/cssclamp@latest
package cssclamp
