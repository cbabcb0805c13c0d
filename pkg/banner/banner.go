package banner

import (
	"fmt"
)

const banner = `
 ██████╗██╗  ██╗██╗██████╗ ██████╗ ██████╗
██╔════╝██║  ██║██║██╔══██╗██╔══██╗██╔══██╗
██║     ███████║██║██████╔╝██████╔╝██║  ██║
██║     ██╔══██║██║██╔══██╗██╔═══╝ ██║  ██║
╚██████╗██║  ██║██║██║  ██║██║     ██████╔╝
 ╚═════╝╚═╝  ╚═╝╚═╝╚═╝  ╚═╝╚═╝     ╚═════╝
`

// Print writes the startup banner with listen address, config sources and
// a short endpoint summary.
func Print(addr, sources, version string) {
	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:   %s\n", addr)
	if version != "" {
		fmt.Printf("Version:  %s\n", version)
	}
	if sources != "" {
		fmt.Printf("Config sources: %s\n", sources)
	}
	fmt.Println("\n== Endpoints ==================================================")
	fmt.Println("POST   /post                     - Create a post (JSON: msg, user_id?, user_key?, replying_to_id?)")
	fmt.Println("GET    /post/{id}                - Read a post")
	fmt.Println("DELETE /post/{id}/delete/{key}   - Delete a post (post key or author key)")
	fmt.Println("GET    /posts/range?start=&end=  - Posts in a UTC time range")
	fmt.Println("GET    /posts/user/{id}          - Posts by a user")
	fmt.Println("POST   /user                     - Create a user (JSON: username, real_name?)")
	fmt.Println("GET    /user/{identifier}        - Read a user by id or username")
	fmt.Println("PUT    /user/{id}                - Update real_name (JSON: key, real_name)")
	fmt.Println("\n== Examples ===================================================")
	fmt.Printf("curl -X POST 'http://%s/post' -d '{\"msg\": \"hello\"}'\n", addr)
	fmt.Printf("curl 'http://%s/posts/range?start=2024-01-01'\n", addr)
}
