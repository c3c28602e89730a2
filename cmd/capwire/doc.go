// Command capwire — a proved greeting pipeline over swappable backends
//
// capwire is the end-to-end binary for the composition machinery in this
// repository. It assembles one plan:
//
//	greeter.gated -> greeter -> person.querier.cached -> person.querier
//	greeter.gated -> clock
//
// and proves it before running anything: every required binding present
// and acyclic, every contract the context must satisfy probed, every
// declared fault class covered by an injector. A broken configuration is
// reported with the binding key and the path that led to it.
//
// Subcommands
//
//   - greet <id>...     prove the (gated) greeter and greet each identity
//   - seed <id> <name>  write a person blob into the configured backend
//   - capabilities      probe contracts, list fault classes, check the plan
//   - version           print the version
//
// Configuration
//
// Keys resolve with the usual precedence: flags, then CAPWIRE_*
// environment variables, then capwire.yaml (in . or $HOME/.config/capwire),
// then defaults:
//
//	backend     memory | fs | sqlite        (default memory)
//	data_dir    fs backend root             (default .capwire)
//	db_path     sqlite file, ":memory:" ok  (default capwire.db)
//	cache       none | map | lru            (default map)
//	lru_size    lru capacity                (default 128)
//	open_hour   gate opens, inclusive       (default 8)
//	close_hour  gate closes, exclusive      (default 20)
//	gated       greet through the gate      (default true)
//	verbose     debug logging               (default false)
//
// The cache choice changes the plan's shape: "none" drops the caching
// binding entirely, "map" backs it with an unbounded synchronized map,
// and "lru" backs it with a bounded LRU whose evictions simply read as
// cache misses.
//
// Examples
//
//	capwire greet alice bob
//	capwire greet alice --at 03:00            # gate closed, fault logged
//	capwire greet alice --gated=false
//	capwire --backend sqlite --db-path people.db seed carol Carol diving
//	capwire --backend sqlite --db-path people.db greet carol
//	capwire --cache lru --lru-size 2 greet alice bob carol alice
//	capwire capabilities
package main
