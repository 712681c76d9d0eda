package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Trungkien03/poker-hand-logic/domain/poker"
)

func cardsString(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func handPanel(res poker.HandResult) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("%s\n%s", pterm.LightCyan(res.Description), cardsString(res.BestFive))
	title := fmt.Sprintf("|%s (%d)|", strings.ToUpper(res.Category.String()), res.Strength)
	return pbox.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Sprint(body)
}

func renderShowdown(w io.Writer, set poker.WinnerSet) error {
	data := pterm.TableData{{"Place", "Player", "Hand", "Best five", "Description"}}
	for _, st := range set.Standings {
		data = append(data, []string{
			strconv.Itoa(st.Place),
			st.PlayerID,
			st.Result.Category.String(),
			cardsString(st.Result.BestFive),
			st.Result.Description,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).WithWriter(w).Render(); err != nil {
		return err
	}

	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	for _, winner := range set.Winners {
		info += pterm.Sprintfln("%s wins with %s", pterm.LightCyan(winner.PlayerID), winner.Category)
	}
	title := "|SHOWDOWN|"
	if set.WinCount > 1 {
		title = fmt.Sprintf("|SPLIT POT %d WAYS|", set.WinCount)
	}
	_, err := fmt.Fprintln(w, pbox.WithTitle(pterm.LightGreen(title)).WithTitleTopCenter().Sprint(info))
	return err
}
