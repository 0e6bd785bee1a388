package fx

import (
	"github.com/orgball2608/mindlink/internal/repositories/activity"
	"github.com/orgball2608/mindlink/internal/repositories/link"
	"go.uber.org/fx"
)

var Module = fx.Options(
	link.Module,
	activity.Module,
)
