/*
Package englishcron converts free-form English descriptions of recurring
schedules ("every 15 seconds", "at 6:00 pm every Monday through Friday") into
Quartz-style cron expressions. The resulting expression can be handed to a cron
parser such as github.com/robfig/cron, or executed directly with the runner
subpackage.
*/
package englishcron
