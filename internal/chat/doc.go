// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the chat session state machine.
//
// A Session mediates between user input and the chatbot endpoint without
// doing any I/O itself. The caller drives it:
//
//	query, ok := session.Submit(input)
//	if ok {
//	    answer, err := client.AskChatbot(ctx, query)
//	    if err != nil {
//	        session.Fail()
//	    } else {
//	        session.Resolve(answer)
//	    }
//	}
//
// This keeps every transition unit-testable without a rendering layer or a
// live service, and makes the single-flight guard easy to verify: Pending
// is set before the call is issued and cleared in both completion branches.
package chat
