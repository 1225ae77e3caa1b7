// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the stash command line interface.
package cli

import (
	"github.com/stashlab/stash/store"
	"github.com/stashlab/stash/web"
)

// Keep service handles in global vars.
var (
	svc    store.Service
	webSvc web.Service
)

// SetService sets the stash service instance used by the commands.
func SetService(s store.Service) {
	svc = s
}

// SetWebService sets the web cache service instance used by the commands.
func SetWebService(s web.Service) {
	webSvc = s
}
