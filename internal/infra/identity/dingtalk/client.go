// Package dingtalk implements the external identity bridge against the
// DingTalk open API. Resolving a login code takes three upstream calls:
// app credentials to access token, code to user id, user id to profile.
package dingtalk

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ZzzGreay/LanyuERP-BE/config"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"

	"github.com/pkg/errors"
)

// Exchange stages, reported inside UpstreamError when a hop fails.
const (
	StageAccessToken = "gettoken"
	StageUserID      = "getuserinfo"
	StageUserDetail  = "getuser"
)

const requestTimeout = 10 * time.Second

// Client resolves external login codes through the DingTalk HTTP API.
type Client struct {
	host      string
	appKey    string
	appSecret string
	http      *http.Client
	logger    *slog.Logger
}

// NewClient creates an identity bridge client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) service.IdentityService {
	return &Client{
		host:      cfg.Identity.Host,
		appKey:    cfg.Identity.AppKey,
		appSecret: cfg.Identity.AppSecret,
		http:      &http.Client{Timeout: requestTimeout},
		logger:    logger,
	}
}

type tokenResponse struct {
	ErrCode     int    `json:"errcode"`
	ErrMsg      string `json:"errmsg"`
	AccessToken string `json:"access_token"`
}

type userInfoResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
	UserID  string `json:"userid"`
}

type userDetailResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
	UserID  string `json:"userid"`
	Name    string `json:"name"`
}

// ResolveCode exchanges a one-time login code for the external user identity.
// Every hop that fails is wrapped in an UpstreamError naming the stage, so a
// broken provider surfaces as 502 rather than a stuck login.
func (c *Client) ResolveCode(ctx context.Context, code string) (*service.IdentityUser, error) {
	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		c.logger.Error("identity bridge: access token exchange failed", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(StageAccessToken, err)
	}

	userID, err := c.fetchUserID(ctx, token, code)
	if err != nil {
		c.logger.Error("identity bridge: code exchange failed", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(StageUserID, err)
	}

	name, err := c.fetchUserName(ctx, token, userID)
	if err != nil {
		c.logger.Error("identity bridge: user detail fetch failed",
			slog.String("externalID", userID),
			slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(StageUserDetail, err)
	}

	c.logger.Info("identity bridge: resolved login code",
		slog.String("externalID", userID),
		slog.String("name", name))

	return &service.IdentityUser{ExternalID: userID, Name: name}, nil
}

func (c *Client) fetchAccessToken(ctx context.Context) (string, error) {
	query := url.Values{}
	query.Set("appkey", c.appKey)
	query.Set("appsecret", c.appSecret)

	var resp tokenResponse
	if err := c.getJSON(ctx, "/gettoken", query, &resp); err != nil {
		return "", err
	}
	if resp.ErrCode != 0 {
		return "", errors.Errorf("provider error %d: %s", resp.ErrCode, resp.ErrMsg)
	}
	if resp.AccessToken == "" {
		return "", errors.New("provider returned empty access token")
	}

	return resp.AccessToken, nil
}

func (c *Client) fetchUserID(ctx context.Context, token, code string) (string, error) {
	query := url.Values{}
	query.Set("access_token", token)
	query.Set("code", code)

	var resp userInfoResponse
	if err := c.getJSON(ctx, "/user/getuserinfo", query, &resp); err != nil {
		return "", err
	}
	if resp.ErrCode != 0 {
		return "", errors.Errorf("provider error %d: %s", resp.ErrCode, resp.ErrMsg)
	}
	if resp.UserID == "" {
		return "", errors.New("provider returned empty user id")
	}

	return resp.UserID, nil
}

func (c *Client) fetchUserName(ctx context.Context, token, userID string) (string, error) {
	query := url.Values{}
	query.Set("access_token", token)
	query.Set("userid", userID)

	var resp userDetailResponse
	if err := c.getJSON(ctx, "/user/get", query, &resp); err != nil {
		return "", err
	}
	if resp.ErrCode != 0 {
		return "", errors.Errorf("provider error %d: %s", resp.ErrCode, resp.ErrMsg)
	}

	return resp.Name, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}
