package api

import (
	"context"
	"net/http"

	"github.com/Favna/rest/logger"
	"github.com/Favna/rest/ratelimit"
	"github.com/Favna/rest/routes"
)

// apiClient is the shared plumbing behind every resource facade: it turns
// typed calls into ratelimit.Requests, queues them through the manager and
// decodes the JSON body into the caller's struct.
type apiClient struct {
	mgr    *ratelimit.Manager
	logger logger.Logger
}

func newApiClient(mgr *ratelimit.Manager, logger logger.Logger) *apiClient {
	return &apiClient{
		mgr:    mgr,
		logger: logger,
	}
}

func (c *apiClient) get(ctx context.Context, route routes.Route, query []ratelimit.Param, resData any) error {
	return c.do(ctx, ratelimit.Request{
		Method: http.MethodGet,
		Route:  route,
		Query:  query,
	}, resData)
}

func (c *apiClient) post(ctx context.Context, route routes.Route, reqData, resData any) error {
	return c.do(ctx, ratelimit.Request{
		Method: http.MethodPost,
		Route:  route,
		Data:   reqData,
	}, resData)
}

func (c *apiClient) patch(ctx context.Context, route routes.Route, reqData any, reason string, resData any) error {
	return c.do(ctx, ratelimit.Request{
		Method: http.MethodPatch,
		Route:  route,
		Data:   reqData,
		Reason: reason,
	}, resData)
}

func (c *apiClient) put(ctx context.Context, route routes.Route, reqData any, reason string) error {
	return c.do(ctx, ratelimit.Request{
		Method: http.MethodPut,
		Route:  route,
		Data:   reqData,
		Reason: reason,
	}, nil)
}

func (c *apiClient) delete(ctx context.Context, route routes.Route, reason string) error {
	return c.do(ctx, ratelimit.Request{
		Method: http.MethodDelete,
		Route:  route,
		Reason: reason,
	}, nil)
}

func (c *apiClient) do(ctx context.Context, req ratelimit.Request, resData any) error {
	err := c.mgr.QueueJSON(ctx, req, resData)
	if err != nil {
		c.logger.Debugf("api: %s %s failed: %v", req.Method, req.Route.Path, err)
	}
	return err
}
