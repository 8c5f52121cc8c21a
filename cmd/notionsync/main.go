// notionsync uploads local markdown notes to Notion.
package main

import (
	"github.com/bon-clevique/NotionSync/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
