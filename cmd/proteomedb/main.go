package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/proteomedb/bootstrap"
	"github.com/fulldump/proteomedb/configuration"
)

var banner = `
 ____            _                            ____  ____  
|  _ \ _ __ ___ | |_ ___  ___  _ __ ___   ___|  _ \| __ ) 
| |_) | '__/ _ \| __/ _ \/ _ \| '_ ` + "`" + ` _ \ / _ \ | | |  _ \ 
|  __/| | | (_) | ||  __/ (_) | | | | | |  __/ |_| | |_) |
|_|   |_|  \___/ \__\___|\___/|_| |_| |_|\___|____/|____/ 
                                 version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.Query != "" {
		err := query(c, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
			os.Exit(1)
		}
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(c)
	start()
}
