package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"expiry-tracker/domain"
)

type (
	// DetectionClient uploads a photo to the remote object-detection service
	// and returns the parsed item candidates. One shot, no retry; any
	// transport or parse failure surfaces as an error.
	DetectionClient interface {
		Detect(ctx context.Context, filename string, image []byte) (domain.DetectionResponse, error)
	}

	detectionClient struct {
		endpoint   string
		httpClient *http.Client
	}
)

func NewDetectionClient(baseURL string) DetectionClient {
	return &detectionClient{
		endpoint:   strings.TrimRight(baseURL, "/") + "/food-expiration/",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *detectionClient) Detect(ctx context.Context, filename string, image []byte) (domain.DetectionResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentTypeFor(filename))

	part, err := writer.CreatePart(header)
	if err != nil {
		return domain.DetectionResponse{}, err
	}
	if _, err := part.Write(image); err != nil {
		return domain.DetectionResponse{}, err
	}
	if err := writer.Close(); err != nil {
		return domain.DetectionResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return domain.DetectionResponse{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.DetectionResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.DetectionResponse{}, fmt.Errorf("detection service error: %s - %s", resp.Status, string(bodyBytes))
	}

	var detection domain.DetectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&detection); err != nil {
		return domain.DetectionResponse{}, err
	}

	return detection, nil
}

// contentTypeFor infers the upload MIME type from the file extension,
// falling back to a generic octet stream.
func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
