// Package session holds the authenticated identity and credential pair for
// the current process and answers authorization queries.
//
// The store keeps session state in memory and mirrors it to durable key-value
// storage under two independent slots, so a session survives restarts:
//
//	store := session.New(kv.NewMemory(),
//		session.WithLogger(log),
//	)
//
//	// Once at process start. Corrupt or partial persisted state is purged
//	// silently; Restore never fails because of it.
//	_ = store.Restore(ctx)
//
//	// After a successful call to the auth API:
//	if err := store.Login(ctx, identity, tokens); err != nil {
//		log.Warn("session not persisted", logger.Error(err))
//	}
//
//	if identity, ok := store.Identity(); ok {
//		fmt.Println("logged in as", identity.Email)
//	}
//
//	_ = store.Logout(ctx)
//
// # Fail-closed restore
//
// Identity and tokens are persisted under separate keys with no transaction
// spanning them. Restore therefore treats any partial or unparsable state as
// corruption: the whole session is considered absent and both slots are
// removed. This guarantees the invariant that identity and credentials are
// always both present or both absent.
//
// # Value semantics
//
// Accessors return copies. The store is safe for concurrent use.
package session
