package provider

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Tables exposed through the client. Identities are provider-internal and
// only reachable through the auth calls.
var Tables = []string{"users", "companies", "attendance", "leave_requests"}

type Client struct {
	factory *Factory
	url     string
	keyRole string
	persist bool
	session *Session
}

type ClientOption func(*Client)

// WithPersistSession controls whether a successful sign-in attaches the new
// session to the client. Defaults to true.
func WithPersistSession(persist bool) ClientOption {
	return func(c *Client) { c.persist = persist }
}

func (c *Client) IsServiceRole() bool {
	return c.keyRole == RoleServiceRole
}

func (c *Client) Session() *Session {
	return c.session
}

// DB returns a handle for table access. An anon client with no session is
// denied by row policy; the service role bypasses it.
func (c *Client) DB(ctx context.Context) (*gorm.DB, error) {
	if !c.IsServiceRole() && c.session == nil {
		return nil, &Error{
			Status:  http.StatusUnauthorized,
			Code:    CodePermissionDenied,
			Message: "permission denied: row level security requires an authenticated session",
		}
	}
	return c.conn(ctx)
}

func (c *Client) conn(ctx context.Context) (*gorm.DB, error) {
	db, err := c.factory.db(c.url)
	if err != nil {
		return nil, err
	}
	return db.WithContext(ctx), nil
}

// Count is a head request: it reports how many rows of table the caller can
// see. Rows are hidden from an anon client without a session, but the table
// must still exist and the database must answer.
func (c *Client) Count(ctx context.Context, table string) (int64, error) {
	if !knownTable(table) {
		return 0, &Error{
			Status:  http.StatusNotFound,
			Code:    CodeUndefinedTable,
			Message: fmt.Sprintf("relation \"public.%s\" does not exist", table),
		}
	}
	db, err := c.conn(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		return 0, Classify(err)
	}
	if !c.IsServiceRole() && c.session == nil {
		return 0, nil
	}
	return count, nil
}

func knownTable(table string) bool {
	for _, t := range Tables {
		if t == table {
			return true
		}
	}
	return false
}
