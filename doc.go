// Package devconnect implements a small developer social network backend:
// user registration and login, developer profiles with experience and
// education records, and a post feed. Routes are JSON over HTTP, guarded by
// a bearer token middleware, persisted through bun repositories.
package devconnect
