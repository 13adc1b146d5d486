package apiproteinv1

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fulldump/box"
)

var ErrBadParameter = errors.New("bad parameter")

func accession(ctx context.Context) string {
	id := box.GetUrlParameter(ctx, "id")
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	return strings.TrimSpace(id)
}

// queryInt reads an integer query parameter, def is used when it is absent.
func queryInt(query url.Values, name string, def int) (int, error) {
	value := strings.TrimSpace(query.Get(name))
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' must be an integer, got '%s'", ErrBadParameter, name, value)
	}
	return n, nil
}
