package viewmodels

import (
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/photovault/cmd/website/internal/flash"
)

type BaseViewModel struct {
	Message            string
	IsError            bool
	IsWarning          bool
	IsHtmx             bool
	Flashes            []flash.Message
	JavascriptIncludes []rendering.JavascriptInclude
}
