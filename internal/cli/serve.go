package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhess/twophase/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the web server to provide a browser-based interface
for the cube solver. Builds (or loads) the table cache before
accepting requests, so the first solve a client sends doesn't pay
the table-construction cost.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")

		fmt.Println("Preparing solver tables...")
		tables, err := loadTables(true)
		if err != nil {
			fmt.Printf("Error loading tables: %v\n", err)
			return
		}

		addr := host + ":" + port
		fmt.Printf("Starting web server at http://%s\n", addr)

		server := web.NewServer(tables)
		if err := server.Start(addr); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
}
