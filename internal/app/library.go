package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/utils"
)

// LibraryOptions narrows the catalog listing.
type LibraryOptions struct {
	// Subject limits the listing to one subject.
	Subject string
	// Topic lists the subtopics of one topic of Subject.
	Topic string
	// Filter narrows the topics.
	Filter library.Filter
}

// ExecuteLibraryCommand prints the catalog.
func ExecuteLibraryCommand(ctx context.Context, out io.Writer, opts LibraryOptions) {
	if err := printLibrary(out, opts); err != nil {
		logger.Fatalf(ctx, "Failed to list the library: %v", err)
	}
}

func printLibrary(out io.Writer, opts LibraryOptions) error {
	catalog, err := library.DefaultCatalog()
	if err != nil {
		return err
	}

	subjects := catalog.Subjects

	if opts.Subject != "" {
		subject, subjectErr := catalog.Subject(opts.Subject)
		if subjectErr != nil {
			return subjectErr
		}

		if opts.Topic != "" {
			topic, topicErr := subject.Topic(opts.Topic)
			if topicErr != nil {
				return topicErr
			}

			return printSubtopics(out, subject, topic)
		}

		subjects = []*library.Subject{subject}
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "SUBJECT\tTOPIC\tID\tCOURSE\tTIER\tBOARD\tSUBTOPICS\tLENGTH")

	for _, subject := range subjects {
		for _, topic := range subject.FilterTopics(opts.Filter) {
			fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
				subject.Icon, subject.Name, topic.Title, topic.ID, topic.CourseType, topic.Tier,
				topic.ExamBoard, len(topic.Subtopics), utils.FormatClock(topic.TotalDuration()))
		}
	}

	return w.Flush()
}

func printSubtopics(out io.Writer, subject *library.Subject, topic *library.Topic) error {
	fmt.Fprintf(out, "%s %s: %s\n%s\n\n", subject.Icon, subject.Name, topic.Title, topic.Description)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "#\tSUBTOPIC\tID\tLENGTH")

	for i, subtopic := range topic.Subtopics {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, subtopic.Title, subtopic.ID, utils.FormatClock(subtopic.NominalDuration()))
	}

	return w.Flush()
}
