package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the fixed-length scheme prefix expected in front of a token.
const BearerPrefix = "Bearer "
