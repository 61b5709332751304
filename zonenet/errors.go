package zonenet

import "errors"

// ErrPeerLost reports that a peer zone was lost. A Fabric surfaces to
// every zone whatever error was passed to Fabric.Fail, which may be
// this one or the failing zone's own error. There is no recovery path;
// the whole run aborts, matching the Non-goals' "no fault tolerance".
var ErrPeerLost = errors.New("zonenet: peer lost, aborting run")
