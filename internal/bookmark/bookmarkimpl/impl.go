package bookmarkimpl

import (
	"time"

	"github.com/orgball2608/mindlink/internal/bookmark"
	"github.com/orgball2608/mindlink/internal/instagram"
	"github.com/orgball2608/mindlink/internal/repositories/activity"
	"github.com/orgball2608/mindlink/internal/repositories/link"
	"github.com/orgball2608/mindlink/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Logger       logger.Logger
	LinkRepo     link.Repository
	ActivityRepo activity.Repository
	Instagram    instagram.Client
}

type BookmarkImpl struct {
	logger       logger.Logger
	linkRepo     link.Repository
	activityRepo activity.Repository
	instagram    instagram.Client
	now          func() time.Time
}

func New(opts Opts) *BookmarkImpl {
	return &BookmarkImpl{
		logger:       opts.Logger.WithComponent("BookmarkService"),
		linkRepo:     opts.LinkRepo,
		activityRepo: opts.ActivityRepo,
		instagram:    opts.Instagram,
		now:          time.Now,
	}
}

var _ bookmark.Client = (*BookmarkImpl)(nil)
