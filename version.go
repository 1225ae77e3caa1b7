// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package stash

// Version of the stash module.
const Version string = "0.1.0"
