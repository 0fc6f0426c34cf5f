package constants

// Static route constants
const (
	APIPrefix = "/api"

	NewsRoute     = "/news"
	CommentsRoute = "/comments"
	AccountRoute  = "/account"
)

// PublicRoute is one entry of the no-signature allow-list.
type PublicRoute struct {
	Method string
	Prefix string
}

// PublicRoutes lists the endpoints exempt from the signature gate: the
// read-only news/comments endpoints plus the legacy media and forum listings
// that share the gate.
var PublicRoutes = []PublicRoute{
	{Method: "GET", Prefix: "/api/news"},
	{Method: "GET", Prefix: "/api/comments"},
	{Method: "GET", Prefix: "/v1/medias"},
	{Method: "GET", Prefix: "/v1/mcanime"},
	{Method: "GET", Prefix: "/v1/forum/categories"},
	{Method: "GET", Prefix: "/v1/forum/topics/mcanime"},
}
