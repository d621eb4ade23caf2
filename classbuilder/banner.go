package classbuilder

import (
	"fmt"
	"strings"
)

var bannerRule = strings.Repeat("/", 100)

// banner frames a description in a boxed summary comment. The leading blank
// lines separate it from whatever was rendered before.
func banner(description string) string {
	var sb strings.Builder
	sb.WriteString("\n\n")
	sb.WriteString(bannerRule + "\n")
	sb.WriteString(fmt.Sprintf("/* <summary> %s </summary> */\n", description))
	sb.WriteString(bannerRule + "\n")
	return sb.String()
}
