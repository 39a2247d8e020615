package readably

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// maxRedirects bounds the fetch client's redirect chain (spec §6: "async ...
// Uses external HTTP client via GET").
const maxRedirects = 5

func newHTTPClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Timeout: 30 * time.Second,
		Jar:     jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}

// ParseURL fetches rawURL, decodes it to UTF-8, and runs the full pipeline.
// Errors map to the sentinel kinds documented in spec §6:
// ErrInvalidURL for a malformed URL or failed request, ErrDecodingFailed
// when the body cannot be converted to valid UTF-8, ErrParsingFailed when
// the pipeline itself fails, and ErrUnknownError for anything else.
func ParseURL(ctx context.Context, rawURL string, opts ...Option) (*ReadabilityData, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, wrapErr(ErrInvalidURL, "ParseURL", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, wrapErr(ErrInvalidURL, "ParseURL", err)
	}

	client := newHTTPClient()
	resp, err := client.Do(req)
	if err != nil {
		return nil, wrapErr(ErrInvalidURL, "ParseURL", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapErr(ErrUnknownError, "ParseURL", err)
	}

	html, err := decodeToUTF8(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, wrapErr(ErrDecodingFailed, "ParseURL", err)
	}

	r, err := New(html, opts...)
	if err != nil {
		return nil, err
	}
	return r.ExtractReadabilityData(r.config.IncludeComments)
}

// decodeToUTF8 detects the response's character encoding from its
// Content-Type header, falling back to chardet sniffing, and converts it to
// UTF-8. It only errors when the result still isn't valid UTF-8, matching
// spec §6's DecodingFailed condition ("bytes not valid UTF-8").
func decodeToUTF8(data []byte, contentType string) (string, error) {
	if enc := encodingFromContentType(contentType); enc != nil {
		if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
			return string(decoded), nil
		}
	}

	detector := chardet.NewTextDetector()
	if result, err := detector.DetectBest(data); err == nil && result.Confidence >= 80 {
		if enc := encodingByName(result.Charset); enc != nil {
			if decoded, derr := enc.NewDecoder().Bytes(data); derr == nil {
				data = decoded
			}
		}
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("response body is not valid utf-8")
	}
	return string(data), nil
}

func encodingFromContentType(contentType string) encoding.Encoding {
	for _, part := range strings.Split(contentType, ";") {
		part = strings.TrimSpace(strings.ToLower(part))
		if strings.HasPrefix(part, "charset=") {
			charset := strings.Trim(strings.TrimPrefix(part, "charset="), `"'`)
			return encodingByName(charset)
		}
	}
	return nil
}

func encodingByName(charset string) encoding.Encoding {
	charset = strings.ReplaceAll(strings.ToLower(charset), "_", "-")
	switch charset {
	case "utf-8", "utf8":
		return unicode.UTF8
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	case "shift-jis", "shift_jis", "sjis":
		return japanese.ShiftJIS
	case "euc-jp", "eucjp":
		return japanese.EUCJP
	case "euc-kr", "euckr":
		return korean.EUCKR
	case "gbk":
		return simplifiedchinese.GBK
	case "gb18030", "gb2312", "gb-2312":
		return simplifiedchinese.GB18030
	case "big5":
		return traditionalchinese.Big5
	default:
		return nil
	}
}
