// Package native loads shared libraries at run time without cgo.
//
// Libraries are opened with purego's dlopen and functions are bound to Go
// function variables with purego.RegisterFunc. A Registry caches open
// handles by logical name and closes them when they are evicted or when
// the registry is closed:
//
//	reg, _ := native.NewRegistry(8, logger)
//	defer reg.Close()
//	libc, err := reg.Load("libc", []string{"libc.so.6"})
//	var getpid func() int32
//	err = libc.Bind(&getpid, "getpid")
package native
