package traceix

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Version is the SDK release version, reported in the User-Agent string.
const Version = "0.0.0.1"

const (
	defaultBaseURL = "https://ai.perkinsfund.org"
	defaultTimeout = 30 * time.Second

	headerAPIKey      = "x-api-key"
	headerUserAgent   = "user-agent"
	headerContentType = "content-type"

	formFieldFile = "file"

	pathUpload      = "/api/traceix/v1/upload"
	pathStatus      = "/api/v1/traceix/status"
	pathCapaSearch  = "/api/traceix/v1/capa/search"
	pathExifSearch  = "/api/traceix/v1/exif/search"
	pathCapa        = "/api/traceix/v1/capa"
	pathExif        = "/api/traceix/v1/exif"
	pathIPFSListAll = "/api/traceix/v1/ipfs/listall"
	pathIPFSSearch  = "/api/traceix/v1/ipfs/search"
	pathIPFSFind    = "/api/traceix/v1/ipfs/find"
)

// Client is the REST client for the Traceix file-analysis API.
// It is safe for concurrent use from multiple goroutines.
//
// Transport and decode failures during a call are collapsed into a nil
// Result with a nil error; the underlying cause is logged through the
// client's logger. Validation and filesystem errors are returned to the
// caller and never reach the network.
type Client struct {
	apiKey    string
	baseURL   string
	userAgent string
	timeout   time.Duration
	http      *resty.Client
	log       *zap.Logger
}

// NewClient creates a Traceix API client. If apiKey is empty the key is read
// from the TRACEIX_API_KEY environment variable; when neither source yields a
// non-empty key, a missing_api_key error is returned and no client is created.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, NewMissingAPIKeyError("failed to read TRACEIX environment configuration", err)
	}

	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return nil, NewMissingAPIKeyError("no API key provided and TRACEIX_API_KEY is not set", nil)
	}

	c := &Client{
		apiKey:    apiKey,
		baseURL:   defaultBaseURL,
		userAgent: buildUserAgent(cfg.TelemetryDisabled()),
		timeout:   defaultTimeout,
		log:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = resty.New()
		c.http.SetTimeout(c.timeout)
	}

	return c, nil
}

// Close releases any resources held by the client.
func (c *Client) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

// FullUpload runs AI prediction, capability extraction and EXIF extraction
// for the file at filePath, strictly in that order, and returns the three
// results. A filesystem error on any of the three opens aborts the sequence.
func (c *Client) FullUpload(ctx context.Context, filePath string) (ai, capa, exif Result, err error) {
	ai, err = c.AIPrediction(ctx, filePath)
	if err != nil {
		return nil, nil, nil, err
	}
	capa, err = c.CapaExtraction(ctx, filePath)
	if err != nil {
		return nil, nil, nil, err
	}
	exif, err = c.ExifExtraction(ctx, filePath)
	if err != nil {
		return nil, nil, nil, err
	}
	return ai, capa, exif, nil
}

// AIPrediction uploads the file at filePath to the AI prediction endpoint.
func (c *Client) AIPrediction(ctx context.Context, filePath string) (Result, error) {
	f, err := openUpload(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.AIPredictionReader(ctx, f, filepath.Base(filePath))
}

// AIPredictionReader uploads file content from r under the given filename.
func (c *Client) AIPredictionReader(ctx context.Context, r io.Reader, filename string) (Result, error) {
	res, err := c.postFile(ctx, pathUpload, r, filename)
	return c.collapse("ai_prediction", res, err), nil
}

// CheckStatus checks the processing status of a previously uploaded file.
// A missing_uuid error is returned, before any network activity, when uuid
// is empty.
func (c *Client) CheckStatus(ctx context.Context, uuid string) (Result, error) {
	if uuid == "" {
		return nil, NewMissingUUIDError("no UUID provided for the status endpoint", nil)
	}

	res, err := c.post(ctx, pathStatus, func(req *resty.Request) {
		req.SetBody(map[string]string{"uuid": uuid})
	})
	return c.collapse("check_status", res, err), nil
}

// HashSearch looks up previously analyzed files by SHA-256. searchType
// selects the index to search: SearchCapa (the default when empty) or
// SearchExif. Any other value fails with an invalid_search_type error
// before any network activity.
func (c *Client) HashSearch(ctx context.Context, fileHash string, searchType SearchType) (Result, error) {
	path, err := searchType.endpoint()
	if err != nil {
		return nil, err
	}

	res, err := c.post(ctx, path, func(req *resty.Request) {
		req.SetHeader(headerContentType, "application/json")
		req.SetBody(map[string]string{"sha256": fileHash})
	})
	return c.collapse("hash_search", res, err), nil
}

// CapaExtraction uploads the file at filePath for capability extraction.
func (c *Client) CapaExtraction(ctx context.Context, filePath string) (Result, error) {
	f, err := openUpload(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.CapaExtractionReader(ctx, f, filepath.Base(filePath))
}

// CapaExtractionReader uploads file content from r for capability extraction.
func (c *Client) CapaExtractionReader(ctx context.Context, r io.Reader, filename string) (Result, error) {
	res, err := c.postFile(ctx, pathCapa, r, filename)
	return c.collapse("capa_extraction", res, err), nil
}

// ExifExtraction uploads the file at filePath for EXIF metadata extraction.
func (c *Client) ExifExtraction(ctx context.Context, filePath string) (Result, error) {
	f, err := openUpload(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.ExifExtractionReader(ctx, f, filepath.Base(filePath))
}

// ExifExtractionReader uploads file content from r for EXIF metadata extraction.
func (c *Client) ExifExtractionReader(ctx context.Context, r io.Reader, filename string) (Result, error) {
	res, err := c.postFile(ctx, pathExif, r, filename)
	return c.collapse("exif_extraction", res, err), nil
}

// ListAllIPFSDatasets lists the public datasets currently available.
// The server does not require an API key for the IPFS endpoints, but the
// key header is sent regardless.
func (c *Client) ListAllIPFSDatasets(ctx context.Context) (Result, error) {
	res, err := c.post(ctx, pathIPFSListAll, nil)
	return c.collapse("ipfs_list_all", res, err), nil
}

// GetPublicIPFSDataset fetches a public dataset by its CID.
func (c *Client) GetPublicIPFSDataset(ctx context.Context, cid string) (Result, error) {
	res, err := c.post(ctx, pathIPFSSearch, func(req *resty.Request) {
		req.SetBody(map[string]string{"cid": cid})
	})
	return c.collapse("ipfs_get_dataset", res, err), nil
}

// SearchIPFSDatasetByHash checks whether a file hash appears in the public
// dataset index.
func (c *Client) SearchIPFSDatasetByHash(ctx context.Context, fileHash string) (Result, error) {
	res, err := c.post(ctx, pathIPFSFind, func(req *resty.Request) {
		req.SetBody(map[string]string{"sha_hash": fileHash})
	})
	return c.collapse("ipfs_find_by_hash", res, err), nil
}

// openUpload opens a file for upload, mapping failures to a file_error.
func openUpload(filePath string) (*os.File, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, NewFileError(fmt.Sprintf("failed to open file: %s", filePath), err)
	}
	return f, nil
}

// headers returns the header set sent with every request.
func (c *Client) headers() map[string]string {
	return map[string]string{
		headerAPIKey:    c.apiKey,
		headerUserAgent: c.userAgent,
	}
}

// url joins the base URL with an endpoint path.
func (c *Client) url(path string) string {
	return c.baseURL + path
}

// postFile issues a multipart upload with the file content under the "file"
// form field, tagged application/octet-stream.
func (c *Client) postFile(ctx context.Context, path string, r io.Reader, filename string) (Result, error) {
	if filename == "" {
		filename = formFieldFile
	}
	return c.post(ctx, path, func(req *resty.Request) {
		req.SetMultipartField(formFieldFile, filename, "application/octet-stream", r)
	})
}

// post issues one POST to the given endpoint and returns the raw JSON reply.
// build customizes the request (body, extra headers); nil sends headers only.
// The HTTP status is not inspected: whatever JSON the server sends is passed
// through, and an undecodable body is a decode_error.
func (c *Client) post(ctx context.Context, path string, build func(*resty.Request)) (Result, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers())
	if build != nil {
		build(req)
	}

	resp, err := req.Post(c.url(path))
	if err != nil {
		return nil, NewTransportError(fmt.Sprintf("request to %s failed", path), err)
	}

	if resp.IsError() {
		c.log.Debug("server returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()))
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, NewDecodeError(
			fmt.Sprintf("response from %s is not valid JSON", path),
			resp.StatusCode(), nil,
		)
	}

	return Result(body), nil
}

// collapse applies the SDK failure policy: transport and decode failures are
// logged with their cause and flattened into the nil absence result.
func (c *Client) collapse(op string, res Result, err error) Result {
	if err == nil {
		return res
	}
	c.log.Warn("traceix request failed", zap.String("op", op), zap.Error(err))
	return nil
}
