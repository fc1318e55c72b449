package sqlinline

const QListReminders = `--sql ac64cb64-b026-484d-a050-bc1010b488ee
select id, user_id, reminder_type, message, scheduled_time, sent_at, status, created_at
from reminders
where user_id = $1::uuid
order by scheduled_time asc;
`

const QInsertReminder = `--sql d45bc528-db54-4d11-992f-2f3ff88a5249
insert into reminders(id, user_id, reminder_type, message, scheduled_time, status, created_at)
values (
  gen_random_uuid(),
  $1::uuid,
  $2::text,
  $3::text,
  $4::timestamptz,
  $5::text,
  now()
)
returning id, created_at;
`

const QDeleteReminder = `--sql 2a2856fd-7608-452c-8a98-752cab1ded58
delete from reminders
where id = $1::uuid
  and user_id = $2::uuid;
`
