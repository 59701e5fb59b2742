// pkg/env/doc.go
package env

/*
Package env assembles the environment exports for a provisioned denv
environment.

It handles:
  - Turning a resolved library search path into dynamic-linker and
    pkg-config variables for the target platform
  - Deriving compiler and linker flags from resolved library directories
  - Applying the exports to individual commands

Basic Usage:

    import "github.com/denv-tools/denv/pkg/env"

    exports := env.Assemble(plat, searchPath)

    // Render shell statements for `eval "$(denv env)"`
    for _, line := range exports.ShellLines() {
        fmt.Println(line)
    }

    // Or scope them to a single command
    cmd := exec.Command("cargo", "build")
    exports.Apply(cmd)

Exports are never written into the denv process environment itself.
Keeping them scoped to a command (or printed for the caller's shell to
eval) means nothing leaks between invocations or tests, and the same
manifest always produces the same environment.
*/
