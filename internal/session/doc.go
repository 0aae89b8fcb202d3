// Package session is an in-memory compositing session that satisfies
// nodegraph.Host. Scripts are YAML documents listing nodes with their class,
// position, knobs and input connections by name:
//
//	nodes:
//	  - name: Camera1
//	    class: Camera
//	    x: 100
//	    y: 40
//	  - name: ScanlineRender1
//	    class: ScanlineRender
//	    inputs: ["", "", Camera1]
//
// Backdrop membership is geometric: a node belongs to a BackdropNode when its
// position lies inside the backdrop rectangle. [Session.Paste] imports a
// script into the live session and returns the last node it declares.
package session
