package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/danielldt/unisonLegends.50/internal/domain"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "table":
		max := 20
		if len(os.Args) >= 3 {
			if v, err := strconv.Atoi(os.Args[2]); err == nil {
				max = v
			}
		}
		if max > domain.MaxLevel {
			max = domain.MaxLevel
		}
		fmt.Printf("%-6s %s\n", "Level", "Total exp for next")
		for lvl := 1; lvl <= max; lvl++ {
			fmt.Printf("%-6d %d\n", lvl, domain.RequiredExp(lvl))
		}
	case "next":
		if len(os.Args) < 3 {
			fmt.Println("Usage: expcalc next <level>")
			return
		}
		lvl, err := strconv.Atoi(os.Args[2])
		if err != nil || lvl < 1 {
			fmt.Printf("Invalid level: %s\n", os.Args[2])
			return
		}
		fmt.Println(domain.RequiredExp(lvl))
	case "level":
		if len(os.Args) < 3 {
			fmt.Println("Usage: expcalc level <total_exp>")
			return
		}
		exp, err := strconv.Atoi(os.Args[2])
		if err != nil || exp < 0 {
			fmt.Printf("Invalid exp: %s\n", os.Args[2])
			return
		}
		lvl := 1
		for domain.CanLevelUp(exp, lvl) {
			lvl++
		}
		fmt.Println(lvl)
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Exp Calculator - кривая опыта сервера
Commands:
  table [max_level]  - таблица порогов опыта до уровня max_level
  next <level>       - суммарный опыт для взятия следующего уровня
  level <total_exp>  - уровень, соответствующий суммарному опыту`)
}
