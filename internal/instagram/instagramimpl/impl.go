package instagramimpl

import (
	"net/http"
	"time"

	"github.com/orgball2608/mindlink/internal/instagram"
	"github.com/orgball2608/mindlink/internal/metacache"
	"github.com/orgball2608/mindlink/pkg/config"
	"github.com/orgball2608/mindlink/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Cache      metacache.Cache
	HTTPClient instagram.HTTPClient `optional:"true"`
}

type InstaImpl struct {
	cache        metacache.Cache
	httpClient   instagram.HTTPClient
	logger       logger.Logger
	userAgent    string
	fetchTimeout time.Duration
	maxBodyBytes int64
}

func New(opts Opts) *InstaImpl {
	md := opts.Config.Metadata

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: md.FetchTimeout}
	}

	return &InstaImpl{
		cache:        opts.Cache,
		httpClient:   httpClient,
		logger:       opts.Logger.WithComponent("InstagramMetadata"),
		userAgent:    md.UserAgent,
		fetchTimeout: md.FetchTimeout,
		maxBodyBytes: md.MaxBodyBytes,
	}
}

var _ instagram.Client = (*InstaImpl)(nil)
