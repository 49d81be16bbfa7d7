package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 2 * time.Second

// IsEmailDomainValid reports whether the address is well formed and its
// domain resolves to a mail exchanger or, failing that, to any host.
func IsEmailDomainValid(email string) bool {
	if Var(email, "required,email") != nil {
		return false
	}

	at := strings.LastIndex(email, "@")
	host := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, host); err == nil && len(mx) > 0 {
		return true
	}

	addrs, err := net.DefaultResolver.LookupHost(ctx, host)
	return err == nil && len(addrs) > 0
}
