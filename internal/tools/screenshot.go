package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

const dataImagePrefix = "data:image"

// Screenshot captures a page. Hosted images are downloaded to output, or
// their URL is printed when output is empty. Inline base64 images are
// decoded to output, or summarized by size when output is empty.
func (t *Toolkit) Screenshot(ctx context.Context, url, output string) error {
	res, err := t.svc.Screenshot(ctx, url)
	if err != nil {
		return err
	}
	shot := res.Screenshot
	if shot == "" {
		return eris.Errorf("no screenshot in response for %s", url)
	}

	if isRemote(shot) {
		if output == "" {
			fmt.Fprintf(t.out, "[Screenshot URL: %s]\n", shot)
			return nil
		}
		if err := t.download(ctx, shot, output); err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Screenshot saved to %s\n", output)
		return nil
	}

	payload := stripDataURI(shot)
	if output == "" {
		fmt.Fprintf(t.out, "[Screenshot: %d bytes base64]\n", len(payload))
		return nil
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return eris.Wrap(err, "decode screenshot")
	}
	if err := writeFile(t.fs, output, data); err != nil {
		return err
	}
	fmt.Fprintf(t.out, "Screenshot saved to %s\n", output)
	return nil
}

func (t *Toolkit) download(ctx context.Context, src, output string) error {
	body, err := t.fetcher.Download(ctx, src)
	if err != nil {
		return eris.Wrap(err, "fetch screenshot")
	}
	defer body.Close() //nolint:errcheck

	f, err := t.fs.Create(output)
	if err != nil {
		return eris.Wrapf(err, "create %s", output)
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		return eris.Wrapf(err, "write %s", output)
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "close %s", output)
	}
	return nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// stripDataURI drops a "data:image/...;base64," header. Anything else is
// assumed to already be bare base64.
func stripDataURI(s string) string {
	if !strings.HasPrefix(s, dataImagePrefix) {
		return s
	}
	if _, payload, ok := strings.Cut(s, ","); ok {
		return payload
	}
	return s
}

func decodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); rawErr == nil {
		return raw, nil
	}
	return nil, err
}
