// Package chatsdk is a Go client for the VerzeChat service.
//
// The Client covers the unauthenticated surface (registration, login, the
// public feed and the health probes). A successful Login returns a Session
// that carries the bearer token for the authenticated operations.
//
//	client := chatsdk.NewClient("http://localhost:8080")
//
//	err := client.Register(ctx, chatsdk.RegisterRequest{
//		Username: "alice",
//		Password: "hunter22",
//	})
//
//	session, err := client.Login(ctx, "alice", "hunter22")
//	err = session.PostMessage(ctx, "hello world")
//
//	feed, err := client.ListMessages(ctx)
//
// Session tokens expire after two hours and cannot be refreshed; call Login
// again when a request starts failing with ErrUnauthorized.
package chatsdk
