package remedy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/prismcam/bootstrap/version"
)

const (
	userAgent          = "Prism bootstrap/%s"
	downloadMaxRetries = 2
)

// overridden in tests to keep retries fast
var (
	downloadRetryDelay  = 3 * time.Second
	downloadMaxInterval = 30 * time.Second
)

// DownloadToFile fetches url into dstFile, retrying a bounded number of
// times on transient failures. The destination is truncated before every
// attempt so a partial body from a failed try never survives.
func DownloadToFile(ctx context.Context, url, dstFile string) error {
	log.Debugf("starting download from %s", url)

	out, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %q: %w", dstFile, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			log.Warnf("error closing file %q: %v", dstFile, cerr)
		}
	}()

	operation := func() error {
		if err := out.Truncate(0); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to truncate file: %w", err))
		}
		if _, err := out.Seek(0, io.SeekStart); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to seek to beginning of file: %w", err))
		}
		return downloadToFileOnce(ctx, url, out)
	}

	expBackOff := backoff.NewExponentialBackOff()
	expBackOff.InitialInterval = downloadRetryDelay
	expBackOff.MaxInterval = downloadMaxInterval
	retry := backoff.WithContext(backoff.WithMaxRetries(expBackOff, downloadMaxRetries), ctx)

	if err := backoff.RetryNotify(operation, retry, func(err error, d time.Duration) {
		log.Warnf("download failed, retrying in %v: %v", d, err)
	}); err != nil {
		return err
	}

	log.Infof("successfully downloaded file to %s", dstFile)
	return nil
}

func downloadToFileOnce(ctx context.Context, url string, out *os.File) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create HTTP request: %w", err))
	}
	req.Header.Set("User-Agent", fmt.Sprintf(userAgent, version.BootstrapVersion()))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warnf("error closing response body: %v", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("unexpected HTTP status: %d", resp.StatusCode)
		// client errors will not fix themselves on retry
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(statusErr)
		}
		return statusErr
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response body to file: %w", err)
	}

	return nil
}
