package main

import (
	"fmt"
	"text/tabwriter"
)

var timeSlots = []string{
	"08:00 - 08:45",
	"08:45 - 09:30",
	"09:30 - 10:15",
	"10:15 - 10:30",
	"10:30 - 11:15",
	"11:15 - 12:00",
	"12:00 - 12:45",
	"12:45 - 13:30",
}

var timetableDays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}

var timetable = map[string][]string{
	"Lunes":     {"Matemáticas 10A", "Matemáticas 10B", "Física 11A", "RECREO", "Química 11B", "Matemáticas 9A", "Física 10A", "Tutoría"},
	"Martes":    {"Física 10B", "Matemáticas 11A", "Química 10A", "RECREO", "Matemáticas 10A", "Física 9B", "Matemáticas 11B", "Preparación"},
	"Miércoles": {"Química 9A", "Física 10A", "Matemáticas 11A", "RECREO", "Matemáticas 10B", "Química 11A", "Física 11B", "Evaluaciones"},
	"Jueves":    {"Matemáticas 9B", "Química 10B", "Física 11A", "RECREO", "Matemáticas 11A", "Física 10B", "Química 9B", "Reunión"},
	"Viernes":   {"Física 9A", "Matemáticas 10A", "Química 11B", "RECREO", "Matemáticas 11B", "Física 10A", "Química 10A", "Planificación"},
}

func (cli *commandLine) timetableCmd() error {
	fmt.Fprintln(cli.out, cli.t("dashboard.weeklyTimetable"))

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "Hora")
	for _, day := range timetableDays {
		fmt.Fprintf(w, "\t%s", day)
	}
	fmt.Fprintln(w)
	for i, slot := range timeSlots {
		fmt.Fprint(w, slot)
		for _, day := range timetableDays {
			fmt.Fprintf(w, "\t%s", timetable[day][i])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
