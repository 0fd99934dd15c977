// Package denali is a client-side Wayland protocol library: a wire codec,
// object lifecycle and event dispatch, and an XML-driven code generator for
// typed protocol bindings (see the wl package and cmd/wlgen).
//
// # Quick Start
//
// Connect to the compositor, fetch the registry, and bind wl_compositor:
//
//	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	display, err := denali.Connect(log)
//	if err != nil {
//	    return err
//	}
//	defer display.Close()
//
//	registry, err := display.GetRegistry()
//	if err != nil {
//	    return err
//	}
//	registry.OnGlobal(func(g wl.Global) {
//	    log.Debug().Str("interface", g.Interface).Msg("global announced")
//	})
//	if err := display.Roundtrip(ctx); err != nil {
//	    return err
//	}
//
// # Architecture
//
// denali is layered bottom-up:
//
//   - wire: the Wayland wire format (headers, fixed-point, strings, arrays)
//   - idmanager: client object id allocation and recycling
//   - transport: the Unix seqpacket socket and SCM_RIGHTS fd passing
//   - connection: the reader/writer goroutines and event queue
//   - proxy / objectstore / handler: per-object request/dispatch plumbing
//   - wl: typed bindings for wayland.xml, xdg-shell, and the virtual input
//     protocols (wl/virtualkeyboard, wl/virtualpointer)
//   - protocol / codegen: the XML parser and source generator behind
//     cmd/wlgen; the wl/virtualkeyboard and wl/virtualpointer bindings
//     follow the shape it emits but are not its verbatim output
package denali
