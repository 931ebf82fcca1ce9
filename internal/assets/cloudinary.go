package assets

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// uploadFolder groups catalog PDFs inside the asset store.
const uploadFolder = "library_pdfs"

// ErrNotConfigured is returned when asset-store credentials are missing and
// an upload or delete is attempted anyway.
var ErrNotConfigured = errors.New("asset store credentials not configured")

// Client talks to a Cloudinary-style asset store. PDFs are stored as "raw"
// resources and referenced by an opaque public ID.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	now        func() time.Time
}

func NewClient(cloudName, apiKey, apiSecret string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   "https://api.cloudinary.com/v1_1",
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

func (c *Client) configured() bool {
	return c.cloudName != "" && c.apiKey != "" && c.apiSecret != ""
}

// Upload stores a file as a raw asset and returns its URL and public ID.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, string, error) {
	if !c.configured() {
		return "", "", ErrNotConfigured
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	params := map[string]string{
		"folder":    uploadFolder,
		"timestamp": timestamp,
	}

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	for k, v := range params {
		if err := writer.WriteField(k, v); err != nil {
			return "", "", err
		}
	}
	if err := writer.WriteField("api_key", c.apiKey); err != nil {
		return "", "", err
	}
	if err := writer.WriteField("signature", c.sign(params)); err != nil {
		return "", "", err
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", "", err
	}
	if err := writer.Close(); err != nil {
		return "", "", err
	}

	endpoint := fmt.Sprintf("%s/%s/raw/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("asset upload failed: status %d", resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", err
	}
	return result.SecureURL, result.PublicID, nil
}

// Destroy deletes a raw asset by its public ID.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	if !c.configured() {
		return ErrNotConfigured
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(params))

	endpoint := fmt.Sprintf("%s/%s/raw/destroy", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("asset delete failed: status %d", resp.StatusCode)
	}

	var result struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	// "not found" counts as deleted; the reference was already stale.
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("asset delete failed: %s", result.Result)
	}
	return nil
}

// sign builds the API signature: parameters sorted by name, joined as a
// query string, concatenated with the secret and SHA-1 hashed.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
