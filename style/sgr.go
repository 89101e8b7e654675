package style

import (
	"strconv"
	"strings"
)

const csi = "\x1b["

// SGR serializes s as a select-graphic-rendition escape sequence: empty
// styles produce no output; otherwise parameters are emitted in a fixed
// order (disable-attributes, enable-attributes, foreground, background)
// followed by the final "m".
func (s Style) SGR() string {
	if s.IsEmpty() {
		return ""
	}

	var params []string
	for _, code := range s.Format.disableCodes() {
		params = append(params, strconv.Itoa(code))
	}
	for _, code := range s.Format.enableCodes() {
		params = append(params, strconv.Itoa(code))
	}
	if s.Foreground != nil {
		params = append(params, s.Foreground.sgrParams(true)...)
	}
	if s.Background != nil {
		params = append(params, s.Background.sgrParams(false)...)
	}

	var b strings.Builder
	b.WriteString(csi)
	b.WriteString(strings.Join(params, ";"))
	b.WriteByte('m')
	return b.String()
}
