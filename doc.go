// Package minutemail provides a Go client SDK for MinuteMail,
// a hosted disposable-mailbox API gateway.
//
// The SDK wraps the gateway's HTTP endpoints for mailbox lifecycle,
// archival, mail retrieval, and attachment handling with typed methods,
// centralizing authentication, timeouts, and error normalization in one
// client.
//
// Basic usage:
//
//	client, err := minutemail.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a disposable mailbox
//	mailbox, err := client.CreateMailbox(ctx, "minutemail.cc",
//	    minutemail.WithExpiresIn(minutemail.ExpiresInMinutes(20)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Read its mail
//	mails, err := client.ListMails(ctx, mailbox.ID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, mail := range mails {
//	    fmt.Println("Subject:", mail.Subject)
//	}
//
// Every call returns exactly one of a decoded value, an [*APIError] (non-2xx
// response, or undecodable 2xx body), or a [*TransportError] (no response
// obtained). [*PreconditionError] reports programmer errors caught before a
// request is issued. The SDK never retries and never logs; both are the
// caller's concern.
package minutemail
