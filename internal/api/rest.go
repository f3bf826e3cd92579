package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/Booru/internal/api/apierror"
	"github.com/hbomb79/Booru/internal/api/identity"
	"github.com/hbomb79/Booru/internal/api/media"
	"github.com/hbomb79/Booru/internal/api/posts"
	"github.com/hbomb79/Booru/internal/api/settings"
	"github.com/hbomb79/Booru/internal/api/users"
	"github.com/hbomb79/Booru/internal/http/websocket"
	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const apiPrefix = "/api/booru/v1"

var log = logger.Get("API")

type (
	RestConfig struct {
		HostAddr            string `yaml:"host_address" env:"API_HOST_ADDR" env-default:"0.0.0.0:8080"`
		TrustIdentityHeader bool   `yaml:"trust_identity_header" env:"API_TRUST_IDENTITY_HEADER" env-default:"false"`
		TLSCertFile         string `yaml:"tls_cert_file" env:"API_TLS_CERT_FILE"`
		TLSKeyFile          string `yaml:"tls_key_file" env:"API_TLS_KEY_FILE"`
	}

	controller interface {
		SetRoutes(*echo.Group)
	}

	// dataStore represents a union of all the controller store requirements
	dataStore interface {
		identity.Store
		posts.Store
		users.Store
		settings.Store
	}

	// The RestGateway is a thin-wrapper around the Echo HTTP router. It's sole responsbility
	// is to create the routes Booru exposes, manage ongoing web socket connections and events,
	// and to resolve the identity of the requesting client.
	RestGateway struct {
		*broadcaster
		config             *RestConfig
		ec                 *echo.Echo
		socket             *websocket.SocketHub
		postsController    controller
		mediaController    controller
		usersController    controller
		settingsController controller
	}
)

// NewRestGateway constructs the Echo router and populates it with all the
// routes defined by the various controllers.
func NewRestGateway(
	config *RestConfig,
	dispatcher posts.Dispatcher,
	lister posts.Lister,
	tagger posts.Tagger,
	contentStore media.ContentStore,
	store dataStore,
) *RestGateway {
	ec := echo.New()
	ec.OnAddRouteHandler = func(host string, route echo.Route, handler echo.HandlerFunc, middleware []echo.MiddlewareFunc) {
		log.Emit(logger.DEBUG, "Registered new route %s %s\n", route.Method, route.Path)
	}
	ec.HidePort = true
	ec.HideBanner = true
	ec.HTTPErrorHandler = apierror.GetHTTPErrorHandler(ec.DefaultHTTPErrorHandler)

	validate := validator.New()
	identityProvider := identity.New(store, validate, config.TrustIdentityHeader)
	requireUser := identityProvider.RequireUser()

	socket := websocket.New()
	socket.WithConnectionCallback(func() map[string]any {
		return map[string]any{"events": []string{TITLE_POST_CREATED, TITLE_POST_PROCESSED, TITLE_POST_REMOVED}}
	})

	gateway := &RestGateway{
		broadcaster:        newBroadcaster(socket),
		config:             config,
		ec:                 ec,
		socket:             socket,
		postsController:    posts.New(validate, requireUser, dispatcher, lister, tagger, store),
		mediaController:    media.New(contentStore),
		usersController:    users.NewController(store, lister),
		settingsController: settings.New(validate, requireUser, store),
	}

	ec.Use(middleware.Logger())
	ec.Use(middleware.Recover())
	ec.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(ec echo.Context) bool { return isMediaPath(ec.Request().URL.Path) },
	}))
	ec.Use(identityProvider.Middleware())

	ec.GET(apiPrefix+"/activity/ws/", func(ec echo.Context) error {
		gateway.socket.UpgradeToSocket(ec.Response(), ec.Request())
		return nil
	})

	gateway.postsController.SetRoutes(ec.Group(apiPrefix + "/posts"))
	gateway.mediaController.SetRoutes(ec.Group(apiPrefix + "/media"))
	gateway.usersController.SetRoutes(ec.Group(apiPrefix + "/users"))
	gateway.settingsController.SetRoutes(ec.Group(apiPrefix + "/user-settings"))

	return gateway
}

// Handler exposes the router, allowing the gateway to be served by something
// other than Run (e.g. httptest).
func (gateway *RestGateway) Handler() *echo.Echo {
	return gateway.ec
}

// Socket returns the websocket hub used for the activity feed.
func (gateway *RestGateway) Socket() *websocket.SocketHub {
	return gateway.socket
}

func (gateway *RestGateway) Run(parentCtx context.Context) error {
	ctx, ctxCancel := context.WithCancelCause(parentCtx)
	wg := &sync.WaitGroup{}

	// Start echo router
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := gateway.start(); err != nil {
			ctxCancel(err)
		}
	}()

	// Start thread to listen for context cancellation
	go func(ec *echo.Echo) {
		<-ctx.Done()
		ec.Close()
	}(gateway.ec)

	// Start websocket
	wg.Add(1)
	go func() {
		defer wg.Done()
		gateway.socket.Start(ctx)
	}()

	wg.Wait()

	// Return cancellation cause if any, otherwise nil as parent context
	// cancellation is not an error case we should report.
	if cause := context.Cause(ctx); cause != ctx.Err() {
		return cause
	}

	return nil
}

func (gateway *RestGateway) start() error {
	if gateway.config.TLSCertFile != "" {
		cert, err := tls.LoadX509KeyPair(gateway.config.TLSCertFile, gateway.config.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS key pair: %w", err)
		}

		// Client certificates are requested but not verified against a CA; they
		// are self-signed identities, hashed by the identity middleware.
		log.Emit(logger.INFO, "Serving API over TLS on %s\n", gateway.config.HostAddr)
		return gateway.ec.StartServer(&http.Server{
			Addr: gateway.config.HostAddr,
			TLSConfig: &tls.Config{
				Certificates: []tls.Certificate{cert},
				ClientAuth:   tls.RequestClientCert,
				MinVersion:   tls.VersionTLS12,
			},
		})
	}

	log.Emit(logger.INFO, "Serving API on %s\n", gateway.config.HostAddr)
	return gateway.ec.Start(gateway.config.HostAddr)
}

func isMediaPath(path string) bool {
	return strings.HasPrefix(path, apiPrefix+"/media/")
}
